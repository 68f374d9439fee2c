/*
Package ports defines the driven ports (interfaces) of the Fable interpreter.

These interfaces decouple the session from where story documents live, allowing
the same interpreter to read stories from the filesystem, memory, or Redis.

# Key Interfaces

  - StoryLoader: resolves a story name (as typed by the player) to raw document bytes.
  - StoryLister: optionally enumerates the stories a loader can serve.
*/
package ports
