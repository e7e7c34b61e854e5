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
	"github.com/pingcap/errors"
)

var (
	ErrInvalidDate        = errors.New("a valid calendar date is required")
	ErrBoundsReversed     = errors.New("the lower bound of the interval cannot be after the upper bound")
	ErrIterationExhausted = errors.New("no dates remain in the interval")
	ErrIntervalImmutable  = errors.New("date intervals are immutable, elements cannot be removed")
)
