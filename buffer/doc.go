// Package buffer implements the block document model behind the editor.
//
// A document is an ordered list of top-level blocks (paragraphs). Positions
// are (Block, Offset) pairs with Offset counted in runes inside the block
// text. Block text may itself contain '\n' (fenced code blocks keep their
// fence and body in one block).
//
// Every mutation happens inside a transaction started with Buffer.Update.
// Reads that drive formatting decisions go through Buffer.Read.
package buffer
