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

// DateIterator is the private cursor of one iteration session. It walks
// the owning interval one calendar day forward at a time. The cursor
// belongs to the session alone, so sessions over the same interval never
// interfere with each other.
type DateIterator struct {
	interval DateInterval
	next     civil.Date
}

// Iterator starts a new iteration session at the interval's first date.
func (d *dateInterval) Iterator() *DateIterator {
	return &DateIterator{interval: d, next: d.first}
}

// Dates materializes one full iteration session into a slice, in
// ascending order.
func (d *dateInterval) Dates() []civil.Date {
	dates := make([]civil.Date, 0, d.length)
	for date := d.first; !date.After(d.last); date = date.AddDays(1) {
		dates = append(dates, date)
	}
	return dates
}

func (it *DateIterator) HasNext() bool {
	return !it.next.After(it.interval.Last())
}

// Next returns the cursor date and advances the cursor by one day. It
// fails once the cursor has passed the interval's last date.
func (it *DateIterator) Next() (civil.Date, error) {
	if !it.HasNext() {
		return civil.Date{}, errors.Annotatef(ErrIterationExhausted, "last element reached in %s", it.interval)
	}
	current := it.next
	it.next = it.next.AddDays(1)
	return current, nil
}

// Remove always fails: the interval and any sequence derived from it
// are immutable.
func (it *DateIterator) Remove() error {
	return errors.Annotatef(ErrIntervalImmutable, "cannot remove elements from %s", it.interval)
}
