// Package catalog defines the quest catalog: the static, tiered list of
// quests the tracker operates on, plus the raw scraped source format the
// build-time generator consumes.
//
// A catalog is produced once, offline, by the generate command and is never
// mutated at runtime. The only runtime state in the system is the completed
// set owned by the progress package.
package catalog
