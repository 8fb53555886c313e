// Package chat implements the chat delivery channel two ways: WebhookSender
// posts signed JSON to an incoming-webhook URL, BotSender talks to a
// Telegram chat through a bot token.
package chat
