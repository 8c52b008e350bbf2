// Package machine implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// A Machine owns all state of one CHIP-8 session:
//   - 4KB of memory (0x000-0xFFF), with the font glyphs at FontBase and the
//     program loaded at ProgramStart
//   - 16 general purpose 8-bit registers (V0-VF), VF doubles as flag output
//   - a 16-bit index register I and the program counter
//   - a return address stack of StackSize entries
//   - delay and sound timers
//   - a DisplayWidth x DisplayHeight monochrome framebuffer
//
// # Execution
//
// Tick performs one step: it either services a pending key wait or fetches,
// decodes and executes one instruction. Both timers are decremented once per
// tick on every path, the caller decides how many ticks run per second.
//
// # Configurable Behavior
//
// Several CHIP-8 behaviors differ between historic interpreters. Each one is
// a field of Quirks:
//   - Edge: sprites drawn across the screen edge wrap around (EdgeWrap) or
//     are clipped (EdgeClip). The start coordinate always wraps.
//   - Index: after Fx55 and Fx65 the index register stays unchanged
//     (IndexUnchanged), advances by X (IndexAddX) or by X+1 (IndexAddXPlusOne).
//     Fx33 never changes the index register.
//   - KeyWait: Fx0A completes when a key is released after being pressed
//     (KeyRelease) or as soon as any key is down (KeyPress).
//   - ResetFlagOnLogic: 8xy1, 8xy2 and 8xy3 clear VF.
//   - ShiftFromY: 8xy6 and 8xyE shift VY into VX instead of shifting VX.
//
// Fixed behavior: subtraction sets VF to 1 when no borrow occurs, 0nnn is
// ignored, Bnnn jumps to nnn+V0 and key skip instructions use the low nibble
// of VX as key index.
//
// # Errors
//
// Every tick either succeeds or returns one of *opcode.DecodeError,
// *MemoryError, ErrStackOverflow or ErrStackUnderflow. LoadProgram returns
// ErrProgramTooLarge. All bounds are checked before an instruction mutates
// any state.
//
// A Machine is not safe for concurrent use.
package machine
