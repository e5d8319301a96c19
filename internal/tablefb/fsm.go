// Package tablefb holds the FlatBuffers accessors for the serialized
// transition table described in table.fbs.
package tablefb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Fsm is a read-only view over a serialized table.
type Fsm struct {
	_tab flatbuffers.Table
}

// GetRootAsFsm returns the Fsm stored at offset in buf.
func GetRootAsFsm(buf []byte, offset flatbuffers.UOffsetT) *Fsm {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Fsm{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Fsm) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Fsm) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Fsm) Version() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Fsm) Pattern() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Fsm) Actions(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *Fsm) ActionsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// actionsInBounds reports whether the actions vector, as described by
// its stored length, lies inside the buffer.
func (rcv *Fsm) actionsInBounds() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return true
	}
	start := uint64(rcv._tab.Vector(o))
	end := start + uint64(rcv._tab.VectorLen(o))*4
	return start <= uint64(len(rcv._tab.Bytes)) && end <= uint64(len(rcv._tab.Bytes))
}

func FsmStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func FsmAddVersion(builder *flatbuffers.Builder, version uint16) {
	builder.PrependUint16Slot(0, version, 0)
}

func FsmAddPattern(builder *flatbuffers.Builder, pattern flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(pattern), 0)
}

func FsmAddActions(builder *flatbuffers.Builder, actions flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(actions), 0)
}

func FsmStartActionsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func FsmEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
