package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// Checkpoint is a decoded .ncr file.
type Checkpoint struct {
	header Header
	data   []byte
	index  map[string]int // name -> position in header.Tensors
}

// Read decodes and verifies a checkpoint from r.
//
// The whole data section is read and checked against the header checksum
// before any tensor is exposed.
func Read(r io.Reader) (*Checkpoint, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[8:16])
	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(data), header.Checksum); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header.Tensors))
	for i, t := range header.Tensors {
		index[t.Name] = i
	}
	return &Checkpoint{header: header, data: data, index: index}, nil
}

// ReadFile reads a checkpoint from path.
func ReadFile(path string) (*Checkpoint, error) {
	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

// Header returns the file header.
func (c *Checkpoint) Header() Header {
	return c.header
}

// Metadata returns the custom metadata, which may be nil.
func (c *Checkpoint) Metadata() map[string]string {
	return c.header.Metadata
}

// Names returns tensor names in file order.
func (c *Checkpoint) Names() []string {
	names := make([]string, len(c.header.Tensors))
	for i, t := range c.header.Tensors {
		names[i] = t.Name
	}
	return names
}

// Tensor decodes the named tensor.
func (c *Checkpoint) Tensor(name string) (*tensor.Tensor, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTensorNotFound, name)
	}
	meta := c.header.Tensors[i]
	values := decodeFloat32s(c.data[meta.Offset : meta.Offset+meta.Size])
	return tensor.New(values, tensor.Shape(meta.Shape))
}
