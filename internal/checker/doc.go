// Package checker runs the why front end over files and directory trees.
// Results of successful checks are cached by source hash so unchanged
// files are skipped on the next run.
package checker
