// Package poly implements power series and exact polynomials with Float
// coefficients stored in a compacting arena.
//
// A Poly is a small value (degree plus arena handle). Coefficient i is the
// coefficient of x^i. The same representation carries two interpretations:
//
//   - power series: PowerAdd, PowerMul and PowerDiv truncate the result and
//     drop terms beyond its degree
//   - exact polynomials: Add and Sub trim exactly-zero leading terms, Mul
//     keeps the full degree sum
//
// Every operation returns a freshly allocated result and leaves its inputs
// untouched. Use Rebind to replace a binding with a result and release the
// old storage in one step:
//
//	sum, err := sp.Add(acc, term)
//	if err != nil {
//	    return err
//	}
//	sp.Rebind(&acc, sum)
//
// Coefficient slices from Coef are borrows that die at the next allocating
// call on the same Space.
package poly
