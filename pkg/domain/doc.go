/*
Package domain contains the core story model of the Fable interpreter.

It defines the typed graph built from a narrative document and the vocabulary the
session uses to talk about it. This package is kept pure and free of I/O, parsing
and persistence, so adapters and the runtime can share it without cycles.

# Key Entities

  - Node: a narrative location with entry text and labeled choices.
  - Choice: a labeled edge to another node, with the text shown when it is taken.
  - StoryGraph: every node of a story plus the name of the start node.
  - Mode: the two-state machine of a session (Load, Play).
  - LifecycleHooks: callbacks emitted by the session for observability.
*/
package domain
