// Package huffman implements a static, per-input Huffman code and the self-describing
// stream format built on it.
//
// # Stream Format
//
// A compressed stream is a sequence of bits, most-significant first within each field:
//
//	magic    32 bits   format.TreeHeaderMagic (0xface8201)
//	tree     variable  preorder: 0 = internal node, 1 + 9-bit symbol = leaf
//	payload  variable  the code of every input byte, then the code of format.PseudoEOF
//	padding  0-7 bits  zeros up to the next byte boundary
//
// The tree always contains a leaf for format.PseudoEOF, so the decoder knows where the
// payload ends without storing the input length.
//
// # Pipeline
//
// Compression runs two passes over the input:
//
//	freq, _ := huffman.CountFrequencies(in)  // pass 1
//	root := huffman.BuildTree(freq)
//	codes := huffman.GenerateCodes(root)
//	in.Reset()
//	huffman.WriteHeader(out, root)
//	huffman.Encode(in, codes, out)           // pass 2
//	out.Close()
//
// and decompression mirrors it:
//
//	root, _ := huffman.ReadHeader(in)
//	huffman.Decode(root, in, out)
//
// Processor bundles both directions with logging and bit accounting.
//
// # Determinism
//
// BuildTree breaks weight ties by creation order: leaves in ascending symbol order
// (PseudoEOF last), then merged nodes in the order they are created. The first node
// popped from the queue becomes the left child. Equal inputs therefore always produce
// byte-identical streams.
package huffman
