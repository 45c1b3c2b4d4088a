package errors_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := perr.NotFoundf("persona %q not found", "abc").WithMeta("persona_id", "abc")

	wrapped := perr.Wrap(base, "load origin")

	assert.True(t, perr.IsNotFound(wrapped))
	assert.Equal(t, "abc", perr.GetMeta(wrapped)["persona_id"])
	assert.Equal(t, `load origin: persona "abc" not found`, wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapForeignErrorIsUnknown(t *testing.T) {
	wrapped := perr.Wrap(stderrors.New("boom"), "redis get")

	assert.Equal(t, perr.CodeUnknown, perr.GetCode(wrapped))
	assert.Nil(t, perr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := perr.WrapWithCode(stderrors.New("dial tcp"), perr.CodeUnavailable, "redis ping")

	assert.True(t, perr.Is(wrapped, perr.CodeUnavailable))
	assert.False(t, perr.IsInvalidArgument(wrapped))
}

func TestWrapDoesNotShareMeta(t *testing.T) {
	base := perr.NotFoundf("journey %q not found", "j-1").WithMeta("journey_id", "j-1")
	wrapped := perr.Wrap(base, "back").WithMeta("step", 2)

	assert.NotContains(t, base.Meta, "step")
	assert.Equal(t, "j-1", wrapped.Meta["journey_id"])
}

func TestLogValueKeepsCodeAndMeta(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := perr.InvalidArgumentf("member index %d out of range", 9).WithMeta("persona_id", "alice")
	logger.Error("open failed", "error", err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	group, ok := line["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "invalid_argument", group["code"])
	assert.Equal(t, "member index 9 out of range", group["msg"])
	assert.Equal(t, "alice", group["persona_id"])
}
