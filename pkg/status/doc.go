/*
Package status owns every write retheme makes to disk.

	            +-------------+
	            |   Manager   |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+------+           +------+-----+
	| FileManager|           |  Reporter  |
	| read/write |           |  tracking  |
	+------------+           +------------+

🎯 Purpose:
- Read targets and write them back in place
- Replace files through temp file + rename so a crash never leaves half a file
- Keep optional .bak copies and restore them
- Track what each rewrite did for the job summary

📝 Notes:
- Files are overwritten unconditionally. A batch that fails on file N leaves
  files before N rewritten; backups are the only way back.
- An existing .bak is never replaced, so it holds the content from before the
  first rewrite until restore removes it.
- Writes keep the permissions of the file they replace.
*/
package status
