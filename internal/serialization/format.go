package serialization

import (
	"encoding/binary"
	"math"
)

// Format constants.
const (
	MagicBytes      = "NCRT"
	FormatVersion   = 1
	FixedHeaderSize = 4 + 4 + 8 // magic + version + header size
	bytesPerElement = 4         // float32
)

// Header represents the JSON header of a .ncr file.
type Header struct {
	FormatVersion int               `json:"format_version"`     // Version of the .ncr format
	CreatedBy     string            `json:"created_by"`         // Library version that wrote the file
	Tensors       []TensorMeta      `json:"tensors"`            // Tensor metadata, in data order
	Metadata      map[string]string `json:"metadata,omitempty"` // Custom metadata
	Checksum      string            `json:"checksum"`           // Hex SHA-256 of the data section
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // Parameter name (e.g., "fc1.weight")
	Shape  []int  `json:"shape"`  // Tensor shape
	Offset int64  `json:"offset"` // Bytes from start of the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// Tensor pairs a name with its float32 values and shape for writing.
type Tensor struct {
	Name  string
	Shape []int
	Data  []float32
}

// encodeFloat32s appends the little-endian encoding of values to dst.
func encodeFloat32s(dst []byte, values []float32) []byte {
	for _, v := range values {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// decodeFloat32s decodes a little-endian float32 buffer.
func decodeFloat32s(src []byte) []float32 {
	out := make([]float32, len(src)/bytesPerElement)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*bytesPerElement:]))
	}
	return out
}
