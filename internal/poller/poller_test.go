// internal/poller/poller_test.go
package poller

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ljwang/pressure-monitor/internal/protocol"
	"github.com/ljwang/pressure-monitor/internal/receiver"
)

// ---- fake transport ----

type fakeTransport struct {
	sent    [][]byte
	in      chan byte
	respond func(t *fakeTransport)
	sendErr error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{in: make(chan byte, 32)}
}

func (f *fakeTransport) Send(frame []byte) error {
	cp := make([]byte, len(frame))
	copy(cp, frame)
	f.sent = append(f.sent, cp)
	if f.sendErr != nil {
		return f.sendErr
	}
	if f.respond != nil {
		f.respond(f)
	}
	return nil
}

func (f *fakeTransport) Bytes() <-chan byte { return f.in }

func (f *fakeTransport) queue(frame []byte) {
	for _, b := range frame {
		f.in <- b
	}
}

func testConfig() Config {
	return Config{
		Interval:         100 * time.Millisecond,
		ResponseTimeout:  50 * time.Millisecond,
		InterByteTimeout: 10 * time.Millisecond,
	}
}

// ---- tests ----

func TestNew_Validation(t *testing.T) {
	tr := newFakeTransport()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero interval", Config{ResponseTimeout: time.Millisecond, InterByteTimeout: time.Millisecond}},
		{"zero response timeout", Config{Interval: time.Second, InterByteTimeout: time.Millisecond}},
		{"zero inter-byte timeout", Config{Interval: time.Second, ResponseTimeout: time.Millisecond}},
		{"response timeout exceeds interval", Config{Interval: time.Millisecond, ResponseTimeout: time.Second, InterByteTimeout: time.Millisecond}},
	}

	for _, c := range cases {
		if _, err := New(c.cfg, tr); err == nil {
			t.Fatalf("%s: New accepted invalid config", c.name)
		}
	}

	if _, err := New(testConfig(), nil); err == nil {
		t.Fatalf("New accepted nil transport")
	}
}

func TestPollOnce_Success(t *testing.T) {
	tr := newFakeTransport()
	tr.respond = func(f *fakeTransport) { f.queue(protocol.EncodeResponse(300)) }

	p, err := New(testConfig(), tr)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.Pressure != 300 {
		t.Fatalf("Pressure=%d want 300", res.Pressure)
	}
	if len(tr.sent) != 1 || !bytes.Equal(tr.sent[0], protocol.Request) {
		t.Fatalf("sent=% X want exactly one fixed request", tr.sent)
	}
}

func TestPollOnce_BadHeaderNoValue(t *testing.T) {
	tr := newFakeTransport()
	tr.respond = func(f *fakeTransport) {
		frame := protocol.EncodeResponse(300)
		frame[0] = 0x02 // wrong slave address
		f.queue(frame)
	}

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, protocol.ErrBadHeader) {
		t.Fatalf("err=%v want ErrBadHeader", res.Err)
	}
}

func TestPollOnce_BadChecksumNoValue(t *testing.T) {
	tr := newFakeTransport()
	tr.respond = func(f *fakeTransport) {
		frame := protocol.EncodeResponse(300)
		frame[3] ^= 0x80 // corrupt data, header stays valid
		f.queue(frame)
	}

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, protocol.ErrBadChecksum) {
		t.Fatalf("err=%v want ErrBadChecksum", res.Err)
	}
}

func TestPollOnce_ShortFrameTimesOut(t *testing.T) {
	tr := newFakeTransport()
	tr.respond = func(f *fakeTransport) {
		f.queue(protocol.EncodeResponse(300)[:3]) // device stalls mid-frame
	}

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, receiver.ErrTimeout) {
		t.Fatalf("err=%v want receiver.ErrTimeout", res.Err)
	}
}

func TestPollOnce_NoResponseTimesOut(t *testing.T) {
	tr := newFakeTransport()

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, receiver.ErrTimeout) {
		t.Fatalf("err=%v want receiver.ErrTimeout", res.Err)
	}
}

func TestPollOnce_SendFailure(t *testing.T) {
	tr := newFakeTransport()
	tr.sendErr = errors.New("port gone")

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if res.Err == nil {
		t.Fatalf("expected send error, got nil")
	}
}

func TestPollOnce_DrainsStaleBytes(t *testing.T) {
	tr := newFakeTransport()
	tr.queue([]byte{0xDE, 0xAD}) // leftovers from an abandoned cycle
	tr.respond = func(f *fakeTransport) { f.queue(protocol.EncodeResponse(512)) }

	p, _ := New(testConfig(), tr)
	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.Pressure != 512 {
		t.Fatalf("Pressure=%d want 512", res.Pressure)
	}
}

func TestRun_OneReadingPerTick(t *testing.T) {
	tr := newFakeTransport()
	tr.respond = func(f *fakeTransport) { f.queue(protocol.EncodeResponse(300)) }

	cfg := Config{
		Interval:         20 * time.Millisecond,
		ResponseTimeout:  10 * time.Millisecond,
		InterByteTimeout: 5 * time.Millisecond,
	}
	p, _ := New(cfg, tr)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Reading)
	go p.Run(ctx, out)

	for i := 0; i < 3; i++ {
		r := <-out
		if r.Err != nil {
			t.Fatalf("reading %d: err=%v", i, r.Err)
		}
		if r.Pressure != 300 {
			t.Fatalf("reading %d: Pressure=%d want 300", i, r.Pressure)
		}
	}
	cancel()

	if len(tr.sent) < 3 {
		t.Fatalf("sent %d requests, want one per consumed tick", len(tr.sent))
	}
}
