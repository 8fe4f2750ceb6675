// Package snana reads and writes SNANA file formats: the TERSE light-curve
// output format and the "simlib" observation-library format.
//
// Simlib files mix global header keywords, per-field blocks introduced by
// a LIBID keyword, and observation lines prefixed with "S:" (search) or
// "T:" (template). Anything following '#' on a line is a comment. A word
// ending in ':' whose letters are all uppercase is a keyword; subsequent
// words up to the next keyword form its value.
package snana
