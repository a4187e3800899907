// Package graphio moves sketches and solver results in and out of the
// process.
//
// Formats:
//
//	csv   node table "NodeID,X,Y", a blank line, edge table
//	      "EdgeID,FromNodeID,ToNodeID,Weight". Readable by spreadsheets.
//	json  GraphDoc {nodes, edges, bidirectional}; results have their own docs.
//	dot   Graphviz source with pinned node positions (neato -n).
//	svg   rendered from dot through the embedded Graphviz (write only).
//
// CSV reading is lenient by default: rows with the wrong number of fields or
// unparsable numbers are skipped, header rows included. Strict() turns every
// such row into ErrMalformedRow carrying the line number.
//
// JSON never carries +Inf: unreachable distances and missing matrix entries
// are encoded as null and decoded back to +Inf.
package graphio
