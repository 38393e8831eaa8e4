package preview

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pagecraft/styler"
)

// renderContext is the renderer's copy of everything the host has told
// it. It is owned state: payloads are decoded into it on each message
// and never referenced back into host memory.
type renderContext struct {
	layers             []*Layer
	selected           string
	componentMap       map[string]Component
	editingComponentID string
	records            map[string][]Record
	fields             map[string][]Field
	breakpoint         styler.Breakpoint
	uiState            styler.UIState
	editMode           bool
	dropZone           string
}

// Renderer drives the canvas preview: it consumes host messages from a
// Port, maintains an HTML document mirroring the layer tree, and emits
// interaction and geometry events. Not safe for concurrent use; the
// channel model is single-threaded and event-driven.
type Renderer struct {
	port    Port
	log     *zap.Logger
	measure Measurer
	rng     *rand.Rand

	ctx renderContext

	root       *html.Node
	nodes      map[string]*html.Node
	layersByID map[string]*Layer
	parents    map[string]*Layer

	editingLayer string
	hovered      string

	pendingHeight int
	heightQueued  bool
	readySent     bool
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

func WithMeasurer(m Measurer) Option {
	return func(r *Renderer) { r.measure = m }
}

// WithRand fixes the source used by random collection sorting.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// New mounts a renderer on a port. It subscribes to host messages,
// renders the empty state and announces readiness to the host exactly
// once.
func New(port Port, opts ...Option) *Renderer {
	r := &Renderer{
		port:    port,
		log:     zap.NewNop(),
		measure: newEstimator(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		ctx: renderContext{
			breakpoint: styler.BreakpointDesktop,
			uiState:    styler.StateNeutral,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	port.OnMessage(r.handle)
	r.rebuild()

	if !r.readySent {
		r.readySent = true
		r.send(MsgReady, nil)
	}
	return r
}

// handle is the message state machine. Any height report queued by the
// previous mutation is flushed first, so geometry always reaches the
// host one message tick after the render that produced it.
func (r *Renderer) handle(msg Message) {
	r.flushHeight()

	switch msg.Type {
	case MsgUpdateLayers:
		var p UpdateLayersPayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad UPDATE_LAYERS payload", zap.Error(err))
			return
		}
		r.ctx.layers = p.Layers
		r.ctx.selected = p.SelectedLayerID
		r.ctx.componentMap = p.ComponentMap
		r.ctx.editingComponentID = p.EditingComponentID
		r.ctx.records = p.CollectionItems
		r.ctx.fields = p.CollectionFields
		r.editingLayer = ""
		r.hovered = ""
		r.rebuild()

	case MsgUpdateSelection:
		var p UpdateSelectionPayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad UPDATE_SELECTION payload", zap.Error(err))
			return
		}
		r.setSelection(p.LayerID)

	case MsgUpdateBreakpoint:
		var p UpdateBreakpointPayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad UPDATE_BREAKPOINT payload", zap.Error(err))
			return
		}
		r.ctx.breakpoint = p.Breakpoint
		r.rebuild()

	case MsgUpdateUIState:
		var p UpdateUIStatePayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad UPDATE_UI_STATE payload", zap.Error(err))
			return
		}
		r.ctx.uiState = p.UIState
		r.rebuild()

	case MsgEnableEditMode:
		var p EnableEditModePayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad ENABLE_EDIT_MODE payload", zap.Error(err))
			return
		}
		r.ctx.editMode = p.Enabled
		if !p.Enabled && r.editingLayer != "" {
			r.CancelTextEdit()
		}

	case MsgHighlightDropZone:
		var p HighlightDropZonePayload
		if err := msg.Decode(&p); err != nil {
			r.log.Warn("bad HIGHLIGHT_DROP_ZONE payload", zap.Error(err))
			return
		}
		r.setDropZone(p.LayerID)

	default:
		r.log.Debug("ignoring message", zap.String("type", string(msg.Type)))
	}
}

// setSelection toggles the selection marker class without a rebuild.
func (r *Renderer) setSelection(layerID string) {
	if prev, ok := r.nodes[r.ctx.selected]; ok {
		removeClass(prev, "pc-selected")
	}
	r.ctx.selected = layerID
	if next, ok := r.nodes[layerID]; ok {
		addClass(next, "pc-selected")
	}
}

// setDropZone toggles the drop target marker class without a rebuild.
func (r *Renderer) setDropZone(layerID string) {
	if prev, ok := r.nodes[r.ctx.dropZone]; ok {
		removeClass(prev, "pc-drop-target")
	}
	r.ctx.dropZone = layerID
	if next, ok := r.nodes[layerID]; ok {
		addClass(next, "pc-drop-target")
	}
}

// Click reports a canvas click to the host. When the clicked layer sits
// inside an applied component instance that is not currently being
// edited, the click selects the instance root instead.
func (r *Renderer) Click(layerID string, metaKey, shiftKey bool) {
	if !r.ctx.editMode {
		return
	}
	target := r.interactionTarget(layerID)
	if target == "" {
		return
	}
	r.send(MsgLayerClick, LayerClickPayload{LayerID: target, MetaKey: metaKey, ShiftKey: shiftKey})
}

// DoubleClick starts an inline text-edit session on a textual layer.
// Edit sessions are exclusive: while one is active, further
// double-clicks are no-ops.
func (r *Renderer) DoubleClick(layerID string) {
	if !r.ctx.editMode || r.editingLayer != "" {
		return
	}
	layer, ok := r.layersByID[layerID]
	if !ok || !layer.IsTextual() {
		return
	}
	r.editingLayer = layerID
	r.rebuild()
	r.send(MsgTextChangeStart, TextChangeStartPayload{LayerID: layerID})
}

// CommitTextEdit ends the active edit session, reporting the raw new
// text to the host. The local static text is updated so the canvas
// stays coherent until the host echoes fresh layers.
func (r *Renderer) CommitTextEdit(text string) {
	if r.editingLayer == "" {
		return
	}
	layerID := r.editingLayer
	r.editingLayer = ""
	if layer, ok := r.layersByID[layerID]; ok && layer.TextField == "" && layer.Variables == nil {
		layer.Text = text
	}
	r.rebuild()
	r.send(MsgTextChangeEnd, TextChangeEndPayload{LayerID: layerID, Text: text})
}

// CancelTextEdit abandons the active edit session and restores the
// rendered text. No event is emitted.
func (r *Renderer) CancelTextEdit() {
	if r.editingLayer == "" {
		return
	}
	r.editingLayer = ""
	r.rebuild()
}

// HoverEnter toggles the hover highlight onto a layer, redirected to
// the component instance root like clicks are.
func (r *Renderer) HoverEnter(layerID string) {
	if !r.ctx.editMode {
		return
	}
	target := r.interactionTarget(layerID)
	if target == r.hovered {
		return
	}
	if prev, ok := r.nodes[r.hovered]; ok {
		removeClass(prev, "pc-hover")
	}
	r.hovered = target
	if next, ok := r.nodes[target]; ok {
		addClass(next, "pc-hover")
	}
}

// HoverLeave clears the hover highlight.
func (r *Renderer) HoverLeave() {
	if prev, ok := r.nodes[r.hovered]; ok {
		removeClass(prev, "pc-hover")
	}
	r.hovered = ""
}

// ContextMenu reports a positioned context-menu request to the host.
func (r *Renderer) ContextMenu(layerID string, x, y int) {
	if !r.ctx.editMode {
		return
	}
	target := r.interactionTarget(layerID)
	if target == "" {
		return
	}
	r.send(MsgContextMenu, ContextMenuPayload{LayerID: target, X: x, Y: y})
}

// DragStart, DragOver and Drop are reserved pass-throughs for the
// host's reordering UI.
func (r *Renderer) DragStart() { r.send(MsgDragStart, nil) }
func (r *Renderer) DragOver()  { r.send(MsgDragOver, nil) }
func (r *Renderer) Drop()      { r.send(MsgDrop, nil) }

// interactionTarget resolves which layer an interaction lands on,
// walking up to the nearest component instance root unless that
// component is the one being edited.
func (r *Renderer) interactionTarget(layerID string) string {
	layer, ok := r.layersByID[layerID]
	if !ok {
		return ""
	}
	for l := layer; l != nil; l = r.parents[l.ID] {
		if l.ComponentID != "" && l.ComponentID != r.ctx.editingComponentID {
			return l.ID
		}
	}
	return layerID
}

// Flush delivers any queued height report immediately instead of
// waiting for the next message tick.
func (r *Renderer) Flush() {
	r.flushHeight()
}

// HTML serializes the current canvas document.
func (r *Renderer) HTML() (string, error) {
	return renderHTML(r.root)
}

// Root exposes the canvas document root for measurement and tests.
func (r *Renderer) Root() *html.Node {
	return r.root
}

func (r *Renderer) queueHeight() {
	r.pendingHeight = r.measure.ContentHeight(r.root)
	r.heightQueued = true
}

func (r *Renderer) flushHeight() {
	if !r.heightQueued {
		return
	}
	r.heightQueued = false
	r.send(MsgContentHeight, ContentHeightPayload{Height: r.pendingHeight})
}

func (r *Renderer) send(t MessageType, payload any) {
	msg, err := NewMessage(t, payload)
	if err != nil {
		r.log.Error("encode message", zap.String("type", string(t)), zap.Error(err))
		return
	}
	if err := r.port.Send(msg); err != nil {
		r.log.Error("send message", zap.String("type", string(t)), zap.Error(err))
	}
}
