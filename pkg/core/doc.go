// Package core runs the conflict detection pipeline.
//
// FindConflicts wires the stages together:
//
//  1. validate the configuration
//  2. read the exclusion list and the load order
//  3. build the layer registry from the load order and mod descriptors
//  4. index the local mod, game and workshop directories
//  5. group duplicate file names, attribute them to layers, aggregate
//
// Stages absorb recoverable problems (a missing descriptor, an absent
// directory, a file owned by no layer) as diagnostics carried in the
// Result. Only configuration problems, an unreadable load order or an
// unreadable exclusion list stop the run.
package core
