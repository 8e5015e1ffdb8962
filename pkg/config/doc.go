/*
Package config manages configuration parsing and validation for fixrc.

	            +-------------+
	            |   Config    |
	            | (Migration) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Describes one migration run: root tree, filename suffix, ignore globs,
  and the ordered rule list
- Parses YAML, JSON, and HCL config files (a bare .fixrc tries YAML then HCL)
- Validates rules and fills in defaults
- Ships the built-in frame-data migration as Default()

🔄 Flow:
1. Load reads the file and picks a parser by extension
2. The parser decodes into Config, rejecting unknown fields
3. Validate checks the rule list and defaults the suffix
4. The rewriter compiles the rules before any file is touched

📝 Design Philosophy:
Rule order is part of the data model, not an implementation detail: every
rule applies to the output of the one before it, so the config is an ordered
program, and the loader preserves that order exactly as written.
*/
package config
