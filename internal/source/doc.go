// Package source defines byte-offset spans and file identity shared by the
// token and syntax layers. The suppression engine never reads file contents;
// spans exist so record boundaries stay ordered and reportable.
package source
