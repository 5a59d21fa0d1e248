// Package sets provides the unordered Set container used throughout
// setsim, together with the primitive set operations the similarity
// measures are built from.
//
// What:
//
//   - Set holds unique, comparable elements of any dynamic type,
//     backed by a map for O(1) membership tests.
//   - Constructors and mutators: New, Add, Remove.
//   - Queries: Has, Len, Elems, Equal, IsSupersetOf.
//   - Algebra: Union, Intersect, Difference, SymmetricDifference, Clone.
//
// Why:
//
//   - Every similarity coefficient reduces to cardinalities of unions,
//     intersections and differences; keeping those primitives in one
//     container keeps each measure a few lines of arithmetic.
//   - Elements are typed as any on purpose: the similarity layer
//     classifies element kinds at run time (all numeric subtypes count
//     as one kind), which a compile-time type parameter cannot express.
//
// Semantics:
//
//   - A nil *Set is a valid, immutable empty set for every read
//     operation (Has, Len, Elems, the algebra, IsSupersetOf, Equal).
//     Only Add and Remove require a Set built with New.
//   - All algebra methods return fresh sets; no operation mutates its
//     operands.
//
// Complexity: all operations are O(|A|) or O(|A|+|B|) time and memory.
package sets
