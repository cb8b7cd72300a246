// Package transaction groups card moves into units that can be performed and
// rolled back exactly.
//
// A Transaction is built with Add calls while pending. Each call becomes a
// Segment that captures its source collection at that moment. Perform runs the
// segments in order and journals the position every card left; Rollback walks
// the journal backwards so every collection gets back its original order, even
// when several segments touch the same cards.
package transaction
