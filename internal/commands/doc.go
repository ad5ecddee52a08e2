// Package commands classifies raw replay commands by their one-byte action code and filters command streams by category.
//
// # Categories
//
// Every action code classifies into exactly one [Category]. Codes listed in the fixed table are known categories; any other
// code classifies into the fallback category, which keeps the code it was built from so that nothing is lost when printing.
//
// [Categories] returns the known categories in table order. That order is what the category prompt shows.
//
// # Filtering
//
// [Filter] keeps the commands whose category belongs to a [Selection]. An empty selection keeps everything.
package commands
