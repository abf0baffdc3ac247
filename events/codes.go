// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Codes is the identity of a physical key, independent of the
// character the key produces under the current layout.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeSpace
	CodeDelete

	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow

	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeLeftShift
	CodeLeftControl
	CodeLeftAlt
	CodeLeftMeta
	CodeRightShift
	CodeRightControl
	CodeRightAlt
	CodeRightMeta
)
