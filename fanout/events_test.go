package fanout_test

import (
	"testing"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/fanout"
	"github.com/stretchr/testify/assert"
)

func TestNewMessageEvent(t *testing.T) {
	r := callback.Receiver{ID: 3, Name: "push", Path: "github/push"}

	t.Run("text body is sent as is", func(t *testing.T) {
		ev := fanout.NewMessageEvent(callback.Message{ID: 1, ReceiverID: 3, Body: `{"a":1}`}, r)

		assert.Equal(t, `{"a":1}`, ev.Body)
		assert.Empty(t, ev.BodyEncoding)
		assert.Equal(t, "push", ev.CallbackName)
		assert.Equal(t, "github/push", ev.CallbackPath)
	})

	t.Run("binary body is base64", func(t *testing.T) {
		ev := fanout.NewMessageEvent(callback.Message{ID: 1, Body: string([]byte{0xff, 0x00, 'a'})}, r)

		assert.Equal(t, "/wBh", ev.Body)
		assert.Equal(t, "base64", ev.BodyEncoding)
	})
}
