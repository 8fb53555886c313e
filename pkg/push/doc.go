// Package push implements the mobile/web push delivery channel through
// Firebase Cloud Messaging. A sender targets one device token, one topic, or
// one condition expression, chosen at construction.
package push
