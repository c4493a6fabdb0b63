// Package memsys
// Author: momentics <momentics@gmail.com>
//
// Raw block sources backing the pool core. Platform-specific sources (anonymous
// mmap on unix, VirtualAlloc on Windows) live in separate build-tagged files
// with a portable heap fallback; Default selects the best one available.
// Sources never reclaim memory mid-life: allocator pools only grow.
package memsys
