package tablefb

import (
	"errors"
	"fmt"
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"
)

// FormatVersion is written into every encoded table.
const FormatVersion uint16 = 1

const oneKB = 1024

// ErrInvalidBuffer is returned for buffers that do not hold a table.
var ErrInvalidBuffer = errors.New("tablefb: invalid buffer")

var builderPool = sync.Pool{
	New: func() interface{} {
		return flatbuffers.NewBuilder(oneKB)
	},
}

func getBuilder() *flatbuffers.Builder {
	return builderPool.Get().(*flatbuffers.Builder)
}

func putBuilder(b *flatbuffers.Builder) {
	b.Reset()
	builderPool.Put(b)
}

// Encode serializes a pattern and its packed actions.
func Encode(pattern string, actions []uint32) []byte {
	builder := getBuilder()
	defer putBuilder(builder)

	patternOffset := builder.CreateString(pattern)

	FsmStartActionsVector(builder, len(actions))
	for i := len(actions) - 1; i >= 0; i-- {
		builder.PrependUint32(actions[i])
	}
	actionsVec := builder.EndVector(len(actions))

	FsmStart(builder)
	FsmAddVersion(builder, FormatVersion)
	FsmAddPattern(builder, patternOffset)
	FsmAddActions(builder, actionsVec)
	root := FsmEnd(builder)

	builder.Finish(root)
	data := builder.FinishedBytes()
	result := make([]byte, len(data))
	copy(result, data)
	return result
}

// Decode returns the pattern and packed actions stored in data.
func Decode(data []byte) (pattern string, actions []uint32, err error) {
	// Root offset plus the smallest possible table.
	if len(data) < 8 {
		return "", nil, ErrInvalidBuffer
	}
	root := flatbuffers.GetUOffsetT(data)
	if int(root) >= len(data)-4 {
		return "", nil, ErrInvalidBuffer
	}

	defer func() {
		// Accessors index the buffer directly and panic on truncated input.
		if r := recover(); r != nil {
			pattern, actions, err = "", nil, fmt.Errorf("%w: %v", ErrInvalidBuffer, r)
		}
	}()

	fsm := GetRootAsFsm(data, 0)
	if v := fsm.Version(); v != FormatVersion {
		return "", nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidBuffer, v)
	}

	// The stored length is untrusted; check it before allocating.
	if !fsm.actionsInBounds() {
		return "", nil, fmt.Errorf("%w: actions vector exceeds buffer", ErrInvalidBuffer)
	}
	n := fsm.ActionsLength()
	actions = make([]uint32, n)
	for i := 0; i < n; i++ {
		actions[i] = fsm.Actions(i)
	}
	return string(fsm.Pattern()), actions, nil
}
