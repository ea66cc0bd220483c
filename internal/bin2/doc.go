// Package bin2 implements the Bin2.0 transform used by BTD Battles 2 to
// obscure its asset files: an 8-byte magic header, a length-derived XOR
// keystream, and a trailing byte rotation.
//
// Note that this is NOT encryption. The keystream is a pure function of the
// content length, so anyone holding a file can reverse the transform without
// any secret. The package reproduces the game's scheme bit-exactly and makes
// no attempt to improve it.
package bin2
