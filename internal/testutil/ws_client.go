package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/boe-dawah/boe-backend/internal/notify"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test client for the admin live feed. The feed is one-way, so
// the client only reads submission notices.
type WSClient struct {
	t       *testing.T
	conn    *gorillaWS.Conn
	notices chan *notify.SubmissionNotice
	errors  chan error
	done    chan struct{}
}

// NewWSClient connects to the feed and starts reading notices.
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:       t,
		conn:    conn,
		notices: make(chan *notify.SubmissionNotice, 16),
		errors:  make(chan error, 4),
		done:    make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// DialRejected attempts a connection that must fail the handshake and returns
// the HTTP status of the rejection.
func DialRejected(t *testing.T, url string) int {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, resp, err := dialer.Dial(url, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected websocket handshake to be rejected")
	}
	if resp == nil {
		t.Fatalf("handshake failed without an HTTP response: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func (c *WSClient) readPump() {
	defer close(c.notices)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			case c.errors <- err:
			}
			return
		}

		var notice notify.SubmissionNotice
		if err := json.Unmarshal(data, &notice); err != nil {
			c.errors <- err
			continue
		}

		select {
		case c.notices <- &notice:
		case <-c.done:
			return
		}
	}
}

// ExpectNotice waits for the next submission notice.
func (c *WSClient) ExpectNotice(timeout time.Duration) *notify.SubmissionNotice {
	c.t.Helper()

	select {
	case notice := <-c.notices:
		if notice == nil {
			c.t.Fatal("connection closed while waiting for notice")
		}
		return notice
	case err := <-c.errors:
		c.t.Fatalf("error while waiting for notice: %v", err)
	case <-time.After(timeout):
		c.t.Fatal("timeout waiting for submission notice")
	}
	return nil
}

// ExpectNoNotice verifies nothing arrives within the timeout.
func (c *WSClient) ExpectNoNotice(timeout time.Duration) {
	c.t.Helper()

	select {
	case notice := <-c.notices:
		if notice != nil {
			c.t.Fatalf("unexpected notice received: %s %s", notice.Type, notice.Kind)
		}
	case <-time.After(timeout):
	}
}

// Close shuts the connection down gracefully.
func (c *WSClient) Close() {
	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}
