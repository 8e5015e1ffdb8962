// Package rewrite implements the migration pass: an ordered regular
// expression rule set applied in place to every suffix-matched file under a
// root directory. One writer, one pass, no state between runs — a file is
// rewritten only when the composed transformation changes its bytes.
package rewrite
