// Package serialization provides the .ncr checkpoint format for saving and
// loading graph parameters.
//
// The .ncr format is a small, checksummed binary container:
//
//	Format Structure:
//	  [4 bytes: Magic "NCRT"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata, including the SHA-256 of the data section]
//	  [Tensor data: float32 little-endian, tensors back to back]
//
// Tensors are written in the order given, so identical inputs produce
// identical bytes.
//
// Example usage:
//
//	// Save parameters
//	f, _ := os.Create("model.ncr")
//	err := serialization.SaveParameters(f, g, map[string]int{
//	    "fc1.weight": fc1.Weight(),
//	    "fc1.bias":   fc1.Bias(),
//	}, nil)
//
//	// Load them back into a graph with the same layout
//	f, _ = os.Open("model.ncr")
//	meta, err := serialization.LoadParameters(f, g, names)
package serialization
