/*
 * Copyright 2021. Go-Interval Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package interval

import (
	"cloud.google.com/go/civil"
	"github.com/pingcap/errors"
)

// IncludingLast builds the closed interval [first, last]. It is the
// same contract as NewDateInterval, named so the call site states that
// the upper bound is part of the interval.
func IncludingLast(first civil.Date, last civil.Date) (DateInterval, error) {
	return NewDateInterval(first, last)
}

// ExcludingLast treats lastExclusive as the first date beyond the
// interval and builds [first, lastExclusive minus one day]. The result
// is still a closed interval; lastExclusive must be strictly after
// first for the interval to be non-empty.
func ExcludingLast(first civil.Date, lastExclusive civil.Date) (DateInterval, error) {
	if !lastExclusive.IsValid() {
		return nil, errors.Annotatef(ErrInvalidDate, "upper bound %s of the interval", lastExclusive)
	}
	return NewDateInterval(first, lastExclusive.AddDays(-1))
}
