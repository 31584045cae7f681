/*
Package functions implements Spark SQL string and digest functions in pure Go.

# Overview

Every function is a pure computation over its arguments. Positions follow
Spark: 1-based, 0 treated as 1, negative values counting back from the end.
Character positions are Unicode code points, not bytes.

# Function Categories

  - Code points: ascii, chr
  - Digests: md5, sha1, sha2, blake3
  - Predicates: contains, startswith, endswith
  - Substrings: substr, substring_index, trim, ltrim, rtrim
  - Search and size: instr, length

# Quick Start

	registry := functions.DefaultRegistry()

	substr, _ := registry.Lookup("substr")
	result, _ := substr.Call([]functions.Value{
	    functions.NewStringValue("Hello world"),
	    functions.NewIntValue(-5),
	})
	fmt.Println(result.AsString()) // Output: world

The typed Go entry points (Substr, Trim, SubstringIndex, Chr, Sha2Hex, ...)
can be called directly when the caller already holds Go strings.

# Result Ownership

substr, substring_index and the trim family return substrings of their input:
the result shares storage with the argument. chr and the digest functions
build new strings.

# Input Contract

Strings are assumed to be valid UTF-8. Malformed input produces unspecified
results but never indexes outside the input.

# NULL Handling

Registry functions return NULL when any argument is NULL. sha2 also returns
NULL for a bit length other than 0, 224, 256, 384 or 512. Nothing else
produces NULL: empty strings, zero counts and out-of-range positions all map
to well-defined results.

# ASCII Fast Path

substr, trim, instr and length check whether their inputs are pure ASCII and
then step one byte at a time instead of following code-point boundaries. The
two paths produce identical results on ASCII input.

# Thread Safety

Functions keep no state. A Registry is safe for concurrent lookups once
registration is finished.
*/
package functions
