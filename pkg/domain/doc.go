/*
Package domain contains the core types of the results enricher.

It is kept free of I/O: loading scenarios and patching results documents is
the job of the adapters behind the interfaces in package ports.

# Key Entities

  - Participant: one entry of a scenario's participants list.
  - ParticipantInfo: the identity extracted from a scenario and written into the results.
*/
package domain
