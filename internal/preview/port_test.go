package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeDeliversBothWays(t *testing.T) {
	a, b := Pipe()

	var gotA, gotB []MessageType
	a.OnMessage(func(m Message) { gotA = append(gotA, m.Type) })
	b.OnMessage(func(m Message) { gotB = append(gotB, m.Type) })

	require.NoError(t, a.Send(Message{Type: MsgReady}))
	require.NoError(t, b.Send(Message{Type: MsgUpdateLayers}))
	require.NoError(t, b.Send(Message{Type: MsgUpdateSelection}))

	assert.Equal(t, []MessageType{MsgUpdateLayers, MsgUpdateSelection}, gotA)
	assert.Equal(t, []MessageType{MsgReady}, gotB)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, rec.Send(Message{Type: MsgReady}))
	require.NoError(t, rec.Send(Message{Type: MsgContentHeight}))
	require.NoError(t, rec.Send(Message{Type: MsgContentHeight}))

	assert.Equal(t, 1, rec.Count(MsgReady))
	assert.Equal(t, 2, rec.Count(MsgContentHeight))
	assert.Len(t, rec.Messages(), 3)

	_, ok := rec.Last(MsgLayerClick)
	assert.False(t, ok)
	last, ok := rec.Last(MsgContentHeight)
	assert.True(t, ok)
	assert.Equal(t, MsgContentHeight, last.Type)
}

func TestMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(MsgLayerClick, LayerClickPayload{LayerID: "a", MetaKey: true})
	require.NoError(t, err)

	var p LayerClickPayload
	require.NoError(t, msg.Decode(&p))
	assert.Equal(t, "a", p.LayerID)
	assert.True(t, p.MetaKey)
	assert.False(t, p.ShiftKey)
}

func TestMessageWithoutPayload(t *testing.T) {
	msg, err := NewMessage(MsgReady, nil)
	require.NoError(t, err)
	assert.Empty(t, msg.Payload)

	var p ContentHeightPayload
	require.NoError(t, msg.Decode(&p))
	assert.Zero(t, p.Height)
}

func TestStringListAcceptsBothForms(t *testing.T) {
	var l Layer
	require.NoError(t, l.Classes.UnmarshalJSON([]byte(`"flex w-full  bg-red-500"`)))
	assert.Equal(t, StringList{"flex", "w-full", "bg-red-500"}, l.Classes)

	require.NoError(t, l.Classes.UnmarshalJSON([]byte(`["flex","w-full"]`)))
	assert.Equal(t, StringList{"flex", "w-full"}, l.Classes)

	require.Error(t, l.Classes.UnmarshalJSON([]byte(`42`)))
}
