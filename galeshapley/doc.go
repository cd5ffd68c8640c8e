// Package galeshapley computes a stable matching between two equal-size
// sides (conventionally "men" and "women") as an instance of the LLP
// kernel.
//
// State is a proposal vector p, where p[i] indexes how far man i has
// advanced through his own preference list. Man i is forbidden while a
// blocking pair exists: a woman he prefers to his current partner who
// would in turn prefer him to her own current partner. Advancing moves
// a forbidden man to his next preference, which can only ever increase
// p, the lattice's direction of progress, and the process halts once no
// blocking pair remains, the definition of a stable matching.
package galeshapley
