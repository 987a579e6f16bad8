// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classgraph

import (
	"fmt"
	"strings"
)

// MaxCategories is the engine's own category-id ceiling: narrow-phase
// filters carry 16 category bits.
const MaxCategories = 16

// CategoryOverflowError reports that compiling the ignore graph would need
// more distinct categories than the engine supports.
type CategoryOverflowError struct {
	Classes []string // classes that pushed the count past MaxCategories
}

func (e *CategoryOverflowError) Error() string {

	return fmt.Sprintf("classgraph: ignore graph needs more than %d categories (offending classes: %s)",
		MaxCategories, strings.Join(e.Classes, ", "))
}
