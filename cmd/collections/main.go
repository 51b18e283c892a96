// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command collections runs container scenarios from YAML files
// and the usage demos of the collections package.
package main

func main() {
	Execute()
}
