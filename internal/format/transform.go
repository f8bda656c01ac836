package format

import (
	"fmt"

	"github.com/joshuapare/skelkit/internal/buf"
)

// BoneTransform is a snapshot of the transform block of the root bone.
type BoneTransform struct {
	XOffset float32 `json:"x_offset"`
	YOffset float32 `json:"y_offset"`
	ScaleX  float32 `json:"scale_x"`
	ScaleY  float32 `json:"scale_y"`
}

// PatchRequest carries the caller-supplied adjustments. Values are taken as is:
// negative, zero, and non-finite scales are all accepted.
type PatchRequest struct {
	XOffsetAdd int32
	YOffsetAdd int32
	ScaleMul   float32
}

// TransformOffset returns the offset of the transform block for a marker found at markerIndex.
func TransformOffset(markerIndex int) int {
	return markerIndex + TransformGap
}

// CheckTransformBounds verifies that a transform block belonging to a marker at
// markerIndex fits in a buffer of bufLen bytes. It returns the block offset.
func CheckTransformBounds(bufLen, markerIndex int) (int, error) {
	off, ok := buf.AddOverflowSafe(markerIndex, TransformGap)
	if !ok {
		return 0, fmt.Errorf("%w: marker at %d", ErrInsufficientData, markerIndex)
	}
	if _, err := buf.CheckSpan(bufLen, off, TransformSize); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}
	return off, nil
}

// ReadTransform decodes the 16-byte transform block at off.
func ReadTransform(b []byte, off int) (BoneTransform, error) {
	block, ok := buf.Slice(b, off, TransformSize)
	if !ok {
		return BoneTransform{}, fmt.Errorf("%w: need %d bytes at 0x%X, have %d", ErrInsufficientData, TransformSize, off, len(b))
	}
	return BoneTransform{
		XOffset: buf.F32BE(block[xOffsetField:]),
		YOffset: buf.F32BE(block[yOffsetField:]),
		ScaleX:  buf.F32BE(block[scaleXField:]),
		ScaleY:  buf.F32BE(block[scaleYField:]),
	}, nil
}

// WriteTransform encodes t into the 16-byte transform block at off, in place.
func WriteTransform(b []byte, off int, t BoneTransform) error {
	block, ok := buf.Slice(b, off, TransformSize)
	if !ok {
		return fmt.Errorf("%w: need %d bytes at 0x%X, have %d", ErrInsufficientData, TransformSize, off, len(b))
	}
	buf.PutF32BE(block[xOffsetField:], t.XOffset)
	buf.PutF32BE(block[yOffsetField:], t.YOffset)
	buf.PutF32BE(block[scaleXField:], t.ScaleX)
	buf.PutF32BE(block[scaleYField:], t.ScaleY)
	return nil
}

// Apply returns t with the offsets shifted and both scales multiplied.
// Results that leave the float32 range become ±Inf and are kept.
func Apply(t BoneTransform, req PatchRequest) BoneTransform {
	return BoneTransform{
		XOffset: t.XOffset + float32(req.XOffsetAdd),
		YOffset: t.YOffset + float32(req.YOffsetAdd),
		ScaleX:  t.ScaleX * req.ScaleMul,
		ScaleY:  t.ScaleY * req.ScaleMul,
	}
}

// Locate finds the root marker in b and returns the marker index and the
// offset of its transform block.
func Locate(b []byte) (marker, block int, err error) {
	marker, ok := FindMarker(b)
	if !ok {
		return -1, -1, ErrMarkerNotFound
	}
	block, err = CheckTransformBounds(len(b), marker)
	if err != nil {
		return marker, -1, err
	}
	return marker, block, nil
}
