// Package utils provides small helpers shared by the transport and runtime
// layers: a preconfigured resty HTTP client and an identifier generator used
// to tag event subscriptions in the logs.
package utils
