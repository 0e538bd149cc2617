// Package strategy lets a Context delegate a sort to an interchangeable
// Algorithm. The Context never knows how the algorithm works; it only holds
// the currently selected one and feeds it a fixed input sequence.
package strategy
