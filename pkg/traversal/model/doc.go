// Package model provides the data structures shared across the traversal packages.
// It defines the step descriptors seen by traversal options,
// the graph element records moved around by the domain steps,
// and the option hooks a traversal invokes while it is wired and pulled.
package model
