/*
Package narop is a toolbox for n-ary operator calls.

Most languages treat binary operators as exactly binary: a chain like
a+b+c+d parses into nested two-operand applications. If a language lets
operator overloads bind more than two operands, its front end needs a
middle stage between parsing and name lookup. narop implements that stage:
it flattens left-associative same-operator chains into single n-ary call
nodes, and binds every n-ary call to a registered overload using a greedy
arity-reduction search, falling back to plain nested binary calls when no
user-defined type participates. Package structure is as follows:

■ tree: arena-based expression trees and the chain linearizer.

■ ops: operator overload descriptions and the frozen overload registry.

■ resolve: overload resolution, with fallback folding to binary form.

■ typing: scopes and declarations mapping identifiers to operand types.

■ lang: a small infix expression language for feeding the core, together
with an interactive shell in sub-package nrepl.

The base package contains small data types which are used throughout all
the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package narop
