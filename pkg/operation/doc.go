/*
Package operation applies jobs to files on disk.

	+-------------+
	|     Job     |
	|  (targets)  |
	+------+------+
	       |
	+------+------+
	|  Transform  |
	| (selector + |
	|    text)    |
	+------+------+
	       |
	+------+------+
	|   status    |
	| (atomic fs) |
	+-------------+

🔄 Flow:
1. Expand the job's targets (paths or doublestar patterns)
2. Pick the rule set for each path (base rules + matching subsets)
3. Apply the rules in order
4. Back up and write through the status package when content changed
5. Print the job report

⚡ Run vs Plan:
Run is strictly sequential and stops at the first failing target. Files
written before the failure are not rolled back. Plan never writes, reads
targets concurrently and feeds each job the planned output of the jobs
before it, so a plan of several jobs shows their combined effect.

Rewrites are not idempotent: running a job twice can change the files again.

🔍 Example:

	jobs, err := operation.NewJobs(cfg)
	runner := operation.NewRunner(operation.Options{Logger: logger})
	results, err := runner.Run(ctx, jobs)
*/
package operation
