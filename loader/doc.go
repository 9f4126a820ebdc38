// This file is part of IPP-proj2.

// Package loader turns the XML-encoded source document into a
// *vm.Program: a validated, order-indexed InstructionTable together with
// its LabelTable and highest instruction order.
//
// The XML parsing itself is treated as an external collaborator: Load
// accepts anything satisfying the small Node interface, and
// NewXMLDocument builds one such tree using the standard library's
// encoding/xml decoder. Swapping in a different document format (or a
// streaming parser) only requires a different Node implementation; Load's
// structural validation never touches encoding/xml directly.
package loader
