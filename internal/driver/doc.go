// Package driver walks directories of serialized tree dumps and runs the
// suppression chain over them in parallel. It owns all I/O and concurrency;
// the engine itself stays pure.
package driver
