// Package scaffold generates new action directories. It powers the
// "actionsmith new" command, producing an action.yml descriptor plus the
// container build files (Dockerfile, entrypoint.sh) and a README with the
// release tag pre-filled.
package scaffold
