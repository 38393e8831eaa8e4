package preview

import (
	"encoding/json"

	"github.com/pagecraft/styler"
)

// MessageType discriminates the envelope payload on the port.
type MessageType string

// Host to renderer.
const (
	MsgUpdateLayers      MessageType = "UPDATE_LAYERS"
	MsgUpdateSelection   MessageType = "UPDATE_SELECTION"
	MsgUpdateBreakpoint  MessageType = "UPDATE_BREAKPOINT"
	MsgUpdateUIState     MessageType = "UPDATE_UI_STATE"
	MsgEnableEditMode    MessageType = "ENABLE_EDIT_MODE"
	MsgHighlightDropZone MessageType = "HIGHLIGHT_DROP_ZONE"
)

// Renderer to host.
const (
	MsgReady           MessageType = "READY"
	MsgLayerClick      MessageType = "LAYER_CLICK"
	MsgTextChangeStart MessageType = "TEXT_CHANGE_START"
	MsgTextChangeEnd   MessageType = "TEXT_CHANGE_END"
	MsgContextMenu     MessageType = "CONTEXT_MENU"
	MsgContentHeight   MessageType = "CONTENT_HEIGHT"
	MsgDragStart       MessageType = "DRAG_START"
	MsgDragOver        MessageType = "DRAG_OVER"
	MsgDrop            MessageType = "DROP"
)

// Message is the JSON envelope exchanged on a Port. The payload is
// decoded lazily against the type-specific struct.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds an envelope around a payload struct. A nil payload
// produces an envelope with no payload field.
func NewMessage(t MessageType, payload any) (Message, error) {
	msg := Message{Type: t}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = raw
	return msg, nil
}

// Decode unmarshals the payload into dst.
func (m Message) Decode(dst any) error {
	if len(m.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(m.Payload, dst)
}

// UpdateLayersPayload replaces the full render input in one shot: the
// layer tree, the selection, applied components and collection data.
type UpdateLayersPayload struct {
	Layers             []*Layer             `json:"layers"`
	SelectedLayerID    string               `json:"selectedLayerId,omitempty"`
	ComponentMap       map[string]Component `json:"componentMap,omitempty"`
	EditingComponentID string               `json:"editingComponentId,omitempty"`
	CollectionItems    map[string][]Record  `json:"collectionItems,omitempty"`
	CollectionFields   map[string][]Field   `json:"collectionFields,omitempty"`
}

type UpdateSelectionPayload struct {
	LayerID string `json:"layerId"`
}

type UpdateBreakpointPayload struct {
	Breakpoint styler.Breakpoint `json:"breakpoint"`
}

type UpdateUIStatePayload struct {
	UIState styler.UIState `json:"uiState"`
}

type EnableEditModePayload struct {
	Enabled bool `json:"enabled"`
}

type HighlightDropZonePayload struct {
	LayerID string `json:"layerId"`
}

type LayerClickPayload struct {
	LayerID  string `json:"layerId"`
	MetaKey  bool   `json:"metaKey"`
	ShiftKey bool   `json:"shiftKey"`
}

type TextChangeStartPayload struct {
	LayerID string `json:"layerId"`
}

type TextChangeEndPayload struct {
	LayerID string `json:"layerId"`
	Text    string `json:"text"`
}

type ContextMenuPayload struct {
	LayerID string `json:"layerId"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

type ContentHeightPayload struct {
	Height int `json:"height"`
}
