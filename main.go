// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/gatewaylabs/contract-cli/cmd"
)

func main() {
	cmd.Execute()
}
