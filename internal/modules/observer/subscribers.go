package observer

import (
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/tools"
)

// NewsChannel keeps every piece of news it has received.
type NewsChannel struct {
	id   string
	name string

	received     []string
	receivedLock sync.RWMutex
	out          io.Writer
}

func NewNewsChannel(out io.Writer, id, name string) *NewsChannel {
	return &NewsChannel{id: id, name: name, out: out}
}

func (c *NewsChannel) ID() string {
	return c.id
}

func (c *NewsChannel) Update(news string) {
	tools.Printf(c.out, "📺 %s received news: %s\n", c.name, news)
	c.receivedLock.Lock()
	c.received = append(c.received, news)
	c.receivedLock.Unlock()
}

func (c *NewsChannel) Received() []string {
	c.receivedLock.RLock()
	defer c.receivedLock.RUnlock()
	return append([]string(nil), c.received...)
}

func (c *NewsChannel) DisplayNews() {
	tools.Printf(c.out, "📺 %s - Latest news: %q\n", c.name, c.Received())
}

type NewsWebsite struct {
	id   string
	name string
	url  string
	out  io.Writer
}

func NewNewsWebsite(out io.Writer, id, name, url string) *NewsWebsite {
	return &NewsWebsite{id: id, name: name, url: url, out: out}
}

func (s *NewsWebsite) ID() string {
	return s.id
}

func (s *NewsWebsite) Update(news string) {
	tools.Printf(s.out, "🌐 %s (%s): Breaking news - %s\n", s.name, s.url, news)
}

type PushNotification struct {
	App   string `json:"app"`
	Users uint32 `json:"users"`
	Body  string `json:"body"`
}

type MobileApp struct {
	id        string
	name      string
	userCount uint32
	out       io.Writer
}

func NewMobileApp(out io.Writer, id, name string, userCount uint32) *MobileApp {
	return &MobileApp{id: id, name: name, userCount: userCount, out: out}
}

func (m *MobileApp) ID() string {
	return m.id
}

func (m *MobileApp) Update(news string) {
	tools.Printf(m.out, "📱 %s (%d users): Push notification - %s\n", m.name, m.userCount, news)
	payload, err := m.Payload(news)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("app", m.name).Msg("render push payload")
		return
	}
	tools.Printf(m.out, "   payload: %s\n", payload)
}

// Payload renders the push notification body sent to devices.
func (m *MobileApp) Payload(news string) (string, error) {
	return jsoniter.MarshalToString(PushNotification{App: m.name, Users: m.userCount, Body: news})
}
