/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package clock contains the registry of clock sources served by the kernel fast time path.

Supported methods include
  - Sources, a copy of the fixed ordered list of clock sources with display names stable
    across platforms
  - Getres and Gettime, wrappers around CLOCK_GETRES and CLOCK_GETTIME
  - Gettimeofday, a wrapper around the legacy GETTIMEOFDAY call with the
    timezone argument left out
  - Reading, a width independent view of timespec and timeval values, so
    ILP32 and LP64 builds produce the same output for the same clock.

The purpose of this library is to make checks over the whole family of clock
calls uniform: adding a clock source is a change to the registry, not to the code
that probes them.
*/
package clock
