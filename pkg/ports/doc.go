/*
Package ports defines the driven ports (interfaces) for the Dicetale engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various corpus sources, roll sources and
story persistence backends.

# Key Interfaces

  - CorpusLoader: Responsible for supplying the example sentences (e.g., from Loam or Memory).
  - RollSource: Responsible for producing die faces (scripted, seeded or physical).
  - StoryStore: Responsible for persisting in-progress Story sessions.
*/
package ports
