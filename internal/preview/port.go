package preview

import "sync"

// Port is the bidirectional message channel between the renderer and
// its host. Send delivers one envelope to the peer; OnMessage registers
// a handler for envelopes arriving from the peer. Delivery is ordered
// and at-most-once; handlers must not block.
type Port interface {
	Send(Message) error
	OnMessage(func(Message))
}

// Pipe returns two connected in-process ports. Sending on one end
// synchronously invokes the handlers registered on the other, which
// keeps tests and embedded hosts free of scheduling concerns.
func Pipe() (Port, Port) {
	a := &pipeEnd{}
	b := &pipeEnd{}
	a.peer = b
	b.peer = a
	return a, b
}

type pipeEnd struct {
	mu       sync.Mutex
	peer     *pipeEnd
	handlers []func(Message)
}

func (p *pipeEnd) Send(msg Message) error {
	p.peer.mu.Lock()
	handlers := make([]func(Message), len(p.peer.handlers))
	copy(handlers, p.peer.handlers)
	p.peer.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
	return nil
}

func (p *pipeEnd) OnMessage(h func(Message)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, h)
}

// Recorder is a Port end that captures everything sent to it. It is
// the host-side test double for asserting renderer output.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Send(msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *Recorder) OnMessage(func(Message)) {}

// Messages returns a snapshot of everything captured so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message of the given type, if any.
func (r *Recorder) Last(t MessageType) (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].Type == t {
			return r.messages[i], true
		}
	}
	return Message{}, false
}

// Count returns how many messages of the given type were captured.
func (r *Recorder) Count(t MessageType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.messages {
		if m.Type == t {
			n++
		}
	}
	return n
}
