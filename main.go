// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/studenthub/chatroom-service/cmd"

func main() {
	cmd.Execute()
}
