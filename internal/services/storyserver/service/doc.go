// Package service assembles the StoryServer MCP server: it wires the
// character registry, story repository, and audit emitter into registered
// tools and prompts, and serves the result over stdio or streamable HTTP.
package service
