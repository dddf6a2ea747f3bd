// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides $ref pointer helpers and incremental key building
// for schema traversal.
//
// # Reference Pointers
//
// [ComponentName] checks that a pointer has the shape
// "#/components/<section>/<name>" and returns the decoded name: the segment is
// percent-decoded and then JSON-Pointer-unescaped ("~1" to "/", "~0" to "~").
//
//	name, ok := pathutil.ComponentName("#/components/schemas/Pet~1v2", pathutil.RefPrefixSchemas)
//	// name == "Pet/v2", ok == true
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("pet")
//	path.Push("tags")
//	path.PushItems()
//	key := path.String() // "pet.tags[]"
//	path.Pop()
package pathutil
