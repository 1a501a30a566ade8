/*
Package config loads the job definitions for retheme.

	            +-------------+
	            |   Config    |
	            |   (Jobs)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   HCL    | |   YAML   | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describe which files to rewrite and with which rules
- Replace hard coded paths with a file that lives next to the project
- Validate rule sets before anything touches disk

🔄 Flow:
1. Pick a parser from the file extension
2. Decode into Config (HCL gets root and env variables)
3. Validate jobs, presets, predicates and (in strict mode) cascades

🔍 Example:

	flags {
	  backup = true
	}

	job "brighten" {
	  preset  = "brighten"
	  targets = ["${root}/app/page.tsx", "app/components/HackathonForm.tsx"]
	}

	job "translucent" {
	  preset  = "translucent"
	  targets = ["app/page.tsx"]

	  when "hero" {
	    path_contains = "page.tsx"

	    rule {
	      old = "bg-black/20"
	      new = "bg-black/30"
	    }
	  }
	}
*/
package config
