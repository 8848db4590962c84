package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxReplyPreview = 500

// SlackNotifier posts chat exchanges to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	location   *time.Location
	now        func() time.Time
}

// NewSlackNotifier returns nil when no webhook is configured, so callers
// can pass the result straight through as "no notifier".
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	if webhookURL == "" {
		return nil
	}
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		loc = time.FixedZone("MST", -7*60*60)
	}
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		location:   loc,
		now:        time.Now,
	}
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

func (n *SlackNotifier) NotifyChat(ctx context.Context, customerMessage, aiResponse string, messageNumber int) error {
	body, err := json.Marshal(n.buildMessage(customerMessage, aiResponse, messageNumber))
	if err != nil {
		return fmt.Errorf("marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("slack returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func (n *SlackNotifier) buildMessage(customerMessage, aiResponse string, messageNumber int) slackMessage {
	timestamp := n.now().In(n.location).Format("Jan 2, 2006, 3:04 PM")

	reply := aiResponse
	if r := []rune(reply); len(r) > maxReplyPreview {
		reply = string(r[:maxReplyPreview]) + "..."
	}

	return slackMessage{Blocks: []slackBlock{
		{Type: "header", Text: &slackText{Type: "plain_text", Text: "💬 New Chat Interaction", Emoji: true}},
		{Type: "context", Elements: []slackText{{
			Type: "mrkdwn",
			Text: fmt.Sprintf("📅 *%s* | Message #%d in conversation", timestamp, messageNumber),
		}}},
		{Type: "divider"},
		{Type: "section", Text: &slackText{
			Type: "mrkdwn",
			Text: "*🧑 Customer Asked:*\n>" + strings.ReplaceAll(customerMessage, "\n", "\n>"),
		}},
		{Type: "section", Text: &slackText{Type: "mrkdwn", Text: "*🤖 AI Responded:*\n" + reply}},
		{Type: "divider"},
	}}
}
